// Package environment names the deployment environments the service runs in
// and normalizes the short aliases operators tend to type ("prod", "dev").
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//		// JSON logs, no debug output
//	}
package environment
