// Package mocksource serves a small fixed SIS and LMS dataset over HTTP.
//
// It stands in for the real source systems during development: point
// SOURCES_SIS_URL and SOURCES_LMS_URL at /mock/sis and /mock/lms on the same
// server and enable it with SERVER_MOCK_SOURCES=true.
package mocksource
