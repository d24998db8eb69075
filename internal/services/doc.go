// Package services defines the shared error taxonomy for tracker
// operations. Sentinel markers let callers classify failures without
// string matching.
package services
