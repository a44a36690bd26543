// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// bodyError reports a request body that could not be decoded.
type bodyError struct {
	status int
	msg    string
}

func (e *bodyError) Error() string { return e.msg }

func malformed(format string, args ...interface{}) *bodyError {
	return &bodyError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

// decodeJSON decodes exactly one JSON value from the request body into dst.
// Unknown fields, trailing data, empty bodies and bodies over maxBodyBytes
// are rejected with a *bodyError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &bodyError{status: http.StatusRequestEntityTooLarge, msg: fmt.Sprintf("request body must not exceed %d bytes", maxBodyBytes)}
		}
		return malformed("reading request body: %v", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return malformed("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return malformed("malformed JSON body: %v", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return malformed("request body must contain a single JSON object")
	}
	return nil
}

// pathParam returns the decoded value of a chi URL parameter. chi matches
// against r.URL.RawPath when it is set and against the decoded r.URL.Path
// otherwise, so only the former still needs unescaping.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
