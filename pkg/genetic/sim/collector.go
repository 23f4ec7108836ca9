package sim

// StatsCollector observes every generation of a simulation.
//
// BeforeStep is called once a generation has been ranked, with the fitness
// of its members best first. AfterStep is called once the next generation has
// replaced it, with the offspring fitness in population order. Collectors must
// not keep the slices past the call.
type StatsCollector[F any] interface {
	BeforeStep(generation uint64, fitness []F)
	AfterStep(generation uint64, fitness []F)
}
