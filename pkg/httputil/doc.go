// Package httputil provides the HTTP client used to fetch JSON-LD context
// documents and to confirm that derived documentation URLs exist.
//
// # Overview
//
// The package wraps the standard library HTTP client with a request timeout
// and maps response statuses to sentinel errors:
//
//   - 404 Not Found -> [ErrNotFound]
//   - any other non-success status or transport failure -> wraps [ErrNetwork]
//
// There is deliberately no retry logic: a failed existence check aborts the
// render that requested it, so retrying would only delay the failure report.
//
// # Example
//
//	client := httputil.NewClient(10 * time.Second)
//	if err := client.Check(ctx, url); errors.Is(err, httputil.ErrNotFound) {
//	    // the documentation page does not exist
//	}
package httputil
