package parameter

// Genetic Algorithm - Problem Definition
const (
	// GAChromosomeLength is the number of bits in every genome
	GAChromosomeLength = 80

	// GATargetOnes is the Hamming weight at which fitness peaks
	GATargetOnes = 40
)

// Genetic Algorithm - Engine Configuration
const (
	// GAPopulationSize is the number of genomes in each generation
	GAPopulationSize = 300

	// GAGenerations is the number of evaluate/reproduce steps per run
	GAGenerations = 50

	// GATournamentSize for selection pressure
	GATournamentSize = 3

	// GACrossoverRate is probability a parent pair is recombined (0.0-1.0)
	GACrossoverRate = 0.9

	// GASeed is the default seed; every run is reproducible from it
	GASeed = 42

	// GAParallelism bounds concurrent fitness evaluations within a generation
	GAParallelism = 4

	// GAParallelThreshold is the population size below which evaluation stays on the caller goroutine
	GAParallelThreshold = 64
)
