// Package client provides a Go client for the Eco-Conscious REST API.
//
// The client wraps resty with base-URL normalisation, bearer-token handling
// and mapping of the API's JSON error envelope onto sentinel errors.
package client
