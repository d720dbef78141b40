package encoding

import (
	"sort"
	"strconv"
	"strings"
)

type acceptedCoding struct {
	name  string
	q     float64
	order int
}

// parseAcceptEncoding returns the codings of an Accept-Encoding header with
// a non-zero weight, highest weight first. Ties keep header order.
func parseAcceptEncoding(header string) []string {
	var codings []acceptedCoding
	for i, chunk := range strings.Split(header, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		name, params, _ := strings.Cut(chunk, ";")
		coding := acceptedCoding{name: strings.ToLower(strings.TrimSpace(name)), q: 1, order: i}
		for _, param := range strings.Split(params, ";") {
			key, value, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || strings.TrimSpace(key) != "q" {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err == nil {
				coding.q = q
			}
		}
		if coding.q <= 0 || coding.name == "*" {
			continue
		}
		codings = append(codings, coding)
	}

	sort.SliceStable(codings, func(i, j int) bool {
		return codings[i].q > codings[j].q
	})

	names := make([]string, 0, len(codings))
	for _, c := range codings {
		names = append(names, c.name)
	}
	return names
}

// EncodeAccepted compresses data with the most preferred coding of an
// Accept-Encoding header that actually shrinks it. Unsupported codings are
// skipped. When nothing helps, data is returned as is with an empty coding.
func EncodeAccepted(data []byte, acceptEncoding string) ([]byte, string, error) {
	for _, coding := range parseAcceptEncoding(acceptEncoding) {
		if coding == Identity || !Supported(coding) {
			continue
		}
		encoded, err := Encode(data, coding)
		if err != nil {
			return nil, "", err
		}
		if len(encoded) < len(data) {
			return encoded, coding, nil
		}
	}

	return data, "", nil
}
