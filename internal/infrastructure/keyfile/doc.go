// Package keyfile loads RSA keys from PEM files and hands them out as opaque key handles.
// It stands in for the key-management collaborator; the operator never parses keys itself.
package keyfile
