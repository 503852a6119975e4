// Package http provides the Remote Resource Client for the song review API.
//
// The Client in this package handles:
//   - A fixed base URL (e.g. http://localhost:3001)
//   - JSON request and response bodies
//   - Uniform failure reporting via RequestFailedError
//
// # Basic Usage
//
//	client := http.NewClient("http://localhost:3001", http.WithLogger(logger))
//
//	var songs []model.Song
//	if err := client.GetJSON(ctx, "/songs", &songs); err != nil {
//	    // errors.Is(err, http.ErrRequestFailed) is always true here
//	}
//
// # Failures
//
// Every non-2xx status and every transport error becomes a
// *RequestFailedError carrying the method, the endpoint path and the status
// code (0 when no response arrived). Callers that need to tell a missing
// resource from an outage use IsNotFound:
//
//	if http.IsNotFound(err) {
//	    // 404
//	}
//
// There is no retry and no caching: every call is a fresh round trip.
package http
