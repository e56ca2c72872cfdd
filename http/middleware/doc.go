/*
The middleware package defines what a middleware is in switchyard and a set of basic middlewares.

The available middlewares are:
- CORS
- InjectIPAddress
- LogRequest
- RateLimit
- RequestID

The following is a reasonable default chain:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
		middleware.LogRequest(log),
	}

*/
package middleware
