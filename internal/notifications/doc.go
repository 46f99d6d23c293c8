// Package notifications triggers Pharos server-side email notifications.
//
// Each Option maps to a fixed API endpoint under /api/v2. The Service issues
// one authenticated GET per requested option, in order, and logs the status
// code and raw body of every response. Non-2xx responses are reported, not
// treated as failures; only transport errors stop a run.
package notifications
