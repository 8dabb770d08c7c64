package application

type RunRequest struct {
	InputPath  string
	OutputPath string
	Format     string
	Workers    int
	// Progress, when set, receives the number of compared pairs after each
	// pair.
	Progress func(done, total int)
}

type GenerateOptions struct {
	Count     int
	MinLength int
	MaxLength int
	// Alphabet defaults to DefaultAlphabet when empty.
	Alphabet string
	Seed     uint64
}
