// Package certs keeps a self-signed localhost certificate for serving the
// API over HTTPS during local development.
package certs

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// Validity is how long a generated certificate stays valid.
const Validity = 365 * 24 * time.Hour

// renewBefore forces regeneration when a certificate is this close to expiry.
const renewBefore = 7 * 24 * time.Hour

// FileManager stores the certificate and key as PEM files in one directory.
type FileManager struct {
	now      func() time.Time
	certFile string
	keyFile  string
	certDir  string
}

// NewFileManager creates a manager for certDir.
func NewFileManager(certDir string) *FileManager {
	return &FileManager{
		now:      time.Now,
		certDir:  certDir,
		certFile: filepath.Join(certDir, "localhost.crt"),
		keyFile:  filepath.Join(certDir, "localhost.key"),
	}
}

// GetOrCreateCertificate loads the stored certificate, regenerating it when
// missing, unreadable, expiring, or not valid for localhost.
func (m *FileManager) GetOrCreateCertificate() (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(m.certFile, m.keyFile)
	switch {
	case err == nil:
		verifyErr := m.verify(cert)
		if verifyErr == nil {
			return cert, nil
		}
		slog.Info("Regenerating localhost certificate", "reason", verifyErr)
	case errors.Is(err, os.ErrNotExist):
		slog.Info("Generating localhost certificate", "dir", m.certDir)
	default:
		slog.Warn("Stored certificate unreadable, regenerating", "error", err)
	}

	return m.generate()
}

// CertificateExists reports whether both PEM files are present.
func (m *FileManager) CertificateExists() (bool, error) {
	for _, path := range []string{m.certFile, m.keyFile} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return false, nil
			}
			return false, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
	return true, nil
}

func (m *FileManager) generate() (tls.Certificate, error) {
	if err := os.MkdirAll(m.certDir, 0o700); err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to create certificate directory: %w", err)
	}

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to generate private key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to generate serial number: %w", err)
	}

	now := m.now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{"the-credit-must-flow"}, CommonName: "localhost"},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(Validity),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IPAddresses:           []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		DNSNames:              []string{"localhost", "*.localhost"},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to create certificate: %w", err)
	}

	keyDER, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to marshal private key: %w", err)
	}

	if err := writePEM(m.certFile, "CERTIFICATE", certDER); err != nil {
		return tls.Certificate{}, err
	}
	if err := writePEM(m.keyFile, "EC PRIVATE KEY", keyDER); err != nil {
		return tls.Certificate{}, err
	}

	return tls.LoadX509KeyPair(m.certFile, m.keyFile)
}

func (m *FileManager) verify(cert tls.Certificate) error {
	if len(cert.Certificate) == 0 {
		return errors.New("no certificates found")
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return fmt.Errorf("failed to parse certificate: %w", err)
	}

	now := m.now()
	if now.Before(leaf.NotBefore) {
		return errors.New("certificate not yet valid")
	}
	if now.Add(renewBefore).After(leaf.NotAfter) {
		return errors.New("certificate expires soon")
	}
	if err := leaf.VerifyHostname("localhost"); err != nil {
		return fmt.Errorf("certificate not valid for localhost: %w", err)
	}
	return nil
}

func writePEM(path, blockType string, der []byte) error {
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
