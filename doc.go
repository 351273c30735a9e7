// Package crunch provides building blocks for handling observational data
// sets: index matching between catalogs, cleaning and normalization, error
// propagation and bootstrap confidence intervals.
//
// # Quick Start
//
//	values := []float64{1.2, 1.9, 2.4, 2.8, 3.1}
//
//	exp, err := crunch.New(values,
//		crunch.WithSeed(42),
//		crunch.WithIterations(5000),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	report, err := exp.Run(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Summary(os.Stdout)
//
// The lower level pieces live under pkg: setops for catalog cross matching,
// prep for cleaning and normalization, nearest for closest-value lookups,
// argsort for index sorting, uncert for value and error arithmetic and
// resample for the bootstrap itself.
package crunch
