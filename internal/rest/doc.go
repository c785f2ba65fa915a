// Package rest is the HTTP host for content items. It exposes a route set per
// content type, lets extensions add response fields and insert hooks to
// public types, and renders write responses after hooks have run.
package rest
