package pkcs12

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

func selfSignedBundle(t *testing.T, password string) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("gerar chave: %v", err)
	}
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "loja.local"},
		DNSNames:     []string{"loja.local"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("criar certificado: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ler certificado: %v", err)
	}

	pfx, err := gopkcs12.Modern.Encode(key, cert, nil, password)
	if err != nil {
		t.Fatalf("codificar PKCS12: %v", err)
	}
	return pfx
}

func TestToPEM(t *testing.T) {
	blocks, err := ToPEM(selfSignedBundle(t, "senha"), "senha")
	if err != nil {
		t.Fatalf("ToPEM: %v", err)
	}
	if len(blocks) != 2 || blocks[0].Type != "CERTIFICATE" || blocks[1].Type != "PRIVATE KEY" {
		t.Errorf("blocos inesperados: %d", len(blocks))
	}
}

func TestLoadTLSCertificate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servidor.p12")
	if err := os.WriteFile(path, selfSignedBundle(t, "senha"), 0o600); err != nil {
		t.Fatalf("gravar arquivo: %v", err)
	}

	cert, err := LoadTLSCertificate(path, "senha")
	if err != nil {
		t.Fatalf("LoadTLSCertificate: %v", err)
	}
	if len(cert.Certificate) != 1 {
		t.Errorf("cadeia com %d certificados, want 1", len(cert.Certificate))
	}

	if _, err := LoadTLSCertificate(path, "errada"); err == nil {
		t.Error("senha errada deveria falhar")
	}
	if _, err := LoadTLSCertificate(filepath.Join(t.TempDir(), "nao-existe.p12"), "senha"); err == nil {
		t.Error("arquivo inexistente deveria falhar")
	}
}
