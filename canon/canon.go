// Package canon implements the deterministic mapping from an HTTP
// request shape (method, URL, ordered parameters) to the message scalar
// the EdDSA layer signs.
package canon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/tainnhan/loopring-sign/errs"
	"github.com/tainnhan/loopring-sign/fr"
	"github.com/tainnhan/loopring-sign/internal/hashutil"
)

// Param is a single ordered (key, value) pair. Order is caller-supplied
// and is never sorted or deduplicated.
type Param struct {
	Key   string
	Value string
}

var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
}

// MsgHash canonicalises the request and reduces its SHA-256 digest,
// read big-endian, into an Fr message scalar.
func MsgHash(method, rawURL string, params []Param) (fr.Fr, error) {
	canonical, err := Canonicalize(method, rawURL, params)
	if err != nil {
		return fr.Fr{}, err
	}
	return fr.NewFr(hashutil.SHA256ScalarBE(fr.P, []byte(canonical))), nil
}

// Canonicalize assembles METHOD + "&" + urlencode(url) + "&" +
// urlencode(payload), validating the method and each parameter along the
// way. The payload depends on the method: GET and DELETE requests carry
// their parameters as "k=v" pairs joined with "&", while POST and PUT
// requests carry them as the compact JSON object the request body would
// hold, string-valued and in caller order. Multiple independent
// validation failures are reported together via a multierror.
func Canonicalize(method, rawURL string, params []Param) (string, error) {
	var errList *multierror.Error

	upperMethod := strings.ToUpper(method)
	if !allowedMethods[upperMethod] {
		errList = multierror.Append(errList, errs.New(errs.Method, "unrecognised HTTP method: "+method))
	}

	if _, err := url.Parse(rawURL); err != nil {
		errList = multierror.Append(errList, errs.Wrap(errs.Parse, "malformed URL", err))
	}

	for i, p := range params {
		if p.Key == "" {
			errList = multierror.Append(errList, errs.New(errs.Parse, fmt.Sprintf("param %d has an empty key", i)))
		}
	}

	if err := errList.ErrorOrNil(); err != nil {
		return "", err
	}

	var payload string
	if upperMethod == "GET" || upperMethod == "DELETE" {
		payload = joinParams(params)
	} else {
		payload = jsonBody(params)
	}
	return upperMethod + "&" + percentEncode(rawURL) + "&" + percentEncode(payload), nil
}

func joinParams(params []Param) string {
	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = p.Key + "=" + p.Value
	}
	return strings.Join(pairs, "&")
}

// jsonBody renders the ordered pairs as a compact JSON object without
// going through a map, which would sort the keys.
func jsonBody(params []Param) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(jsonString(p.Key))
		b.WriteByte(':')
		b.Write(jsonString(p.Value))
	}
	b.WriteByte('}')
	return b.String()
}

// jsonString quotes s as a JSON string without the HTML-safe escaping of
// json.Marshal, which would escape "&", "<" and ">" and change the hash.
func jsonString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		panic("canon: " + err.Error())
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}

const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"

// percentEncode applies strict percent-encoding: the reserved set is any
// byte outside [A-Za-z0-9-_.~]; space becomes "%20" (never "+"); hex
// escapes use uppercase digits. This cannot use net/url.QueryEscape,
// which encodes space as "+".
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(unreserved, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
