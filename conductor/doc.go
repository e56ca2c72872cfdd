/*

Package conductor manages and exposes all components of a switchyard app to one another.

A [*Conductor] gathers the ambient pieces - environment, logger, template
engine, optional database - from functional options and environment
variables, then accepts the app's route tables through Register and runs
the web server through Serve until signalled to stop.

The smallest possible app:

	c, err := conductor.New()
	if err != nil {
		log.Fatal(err)
	}

	err = c.Register(
		route.NewTable(BlogPost{}, c.EmitEngine()).New().Index().Show(),
	)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(c.Serve())

*/
package conductor
