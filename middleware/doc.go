// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

  - WithLogging: structured request/response logging with a per-request
    uuid under the request_id key
  - JSONResponse / ErrorResponse: JSON encoding with the standard
    {error, message} error shape
  - ParseJSONBody: request body decoding
  - CORS: cross-origin headers and OPTIONS preflight handling for the
    browser client
  - GetClientIP: X-Forwarded-For / X-Real-IP aware client address
*/
package middleware
