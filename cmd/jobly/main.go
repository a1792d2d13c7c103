// Jobly serves the job board REST API.
//
// Usage:
//
//	# Apply pending migrations
//	jobly migrate
//
//	# Start the API server
//	jobly serve --port 3001
//
//	# Show version information
//	jobly version
package main

func main() {
	Execute()
}
