// Package store reads the external input records the monitoring core
// consumes at startup: the credential list and the optional proxy list.
// Both are plain text files, one record per line.
package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/guild-sentry/models"
)

// LoadCredentials reads "label:secret" records from path. Lines without a
// separator are skipped; surrounding whitespace is trimmed. The secret keeps
// any further colons intact.
//
// Returns [ErrNoCredentials] when the file is absent, unreadable, or yields
// zero records.
func LoadCredentials(path string) ([]models.Credential, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	defer file.Close()

	var creds []models.Credential
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		label, secret, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		label = strings.TrimSpace(label)
		secret = strings.TrimSpace(secret)
		if label == "" || secret == "" {
			continue
		}
		creds = append(creds, models.Credential{Label: label, Secret: secret})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	if len(creds) == 0 {
		return nil, ErrNoCredentials
	}

	return creds, nil
}

// LoadProxies reads proxy records from path. A missing file is not an error:
// the monitor simply runs without proxies. Malformed records are returned as
// an error so the operator notices a typo instead of silently running
// unproxied.
func LoadProxies(path string) ([]models.ProxyEndpoint, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open proxy file: %w", err)
	}
	defer file.Close()

	var proxies []models.ProxyEndpoint
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		proxy, err := ParseProxy(line)
		if err != nil {
			return nil, err
		}
		proxies = append(proxies, proxy)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read proxy file: %w", err)
	}

	return proxies, nil
}

// ParseProxy parses a single proxy record in "host:port" or
// "user:pass@host:port" form.
func ParseProxy(raw string) (models.ProxyEndpoint, error) {
	endpoint := models.ProxyEndpoint{Scheme: "http"}

	hostPart := raw
	if auth, host, found := strings.Cut(raw, "@"); found {
		user, pass, ok := strings.Cut(auth, ":")
		if !ok || user == "" {
			return models.ProxyEndpoint{}, fmt.Errorf("%w: %q", ErrMalformedProxy, raw)
		}
		endpoint.User = user
		endpoint.Password = pass
		hostPart = host
	}

	host, port, found := strings.Cut(hostPart, ":")
	if !found || host == "" || port == "" {
		return models.ProxyEndpoint{}, fmt.Errorf("%w: %q", ErrMalformedProxy, raw)
	}
	endpoint.Host = host
	endpoint.Port = port

	return endpoint, nil
}
