/*
 * Copyright 2025 crop-analysis authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package fetcher

import "fmt"

// ErrNetwork represents transport failures: DNS, connection refused/reset,
// and non-2xx HTTP status responses.
type ErrNetwork struct {
	Msg string
	Err error
}

// ErrFormat represents response bodies that do not parse as the expected
// format (CSV for datasets, JSON for metadata documents).
type ErrFormat struct {
	Msg string
	Err error
}

// ErrTimeout represents requests that exceeded the configured timeout
type ErrTimeout struct {
	Msg string
	Err error
}

// ErrCancelled represents errors when an operation is cancelled
type ErrCancelled struct {
	Msg string
	Err error
}

func (e *ErrNetwork) Error() string {
	return formatError("network error", e.Msg, e.Err)
}

func (e *ErrNetwork) Unwrap() error {
	return e.Err
}

func (e *ErrFormat) Error() string {
	return formatError("format error", e.Msg, e.Err)
}

func (e *ErrFormat) Unwrap() error {
	return e.Err
}

func (e *ErrTimeout) Error() string {
	return formatError("timeout error", e.Msg, e.Err)
}

func (e *ErrTimeout) Unwrap() error {
	return e.Err
}

func (e *ErrCancelled) Error() string {
	return formatError("operation cancelled", e.Msg, e.Err)
}

func (e *ErrCancelled) Unwrap() error {
	return e.Err
}

func formatError(kind, msg string, err error) string {
	if err == nil {
		return fmt.Sprintf("%s: %s", kind, msg)
	}
	return fmt.Sprintf("%s: %s: %v", kind, msg, err)
}
