package pkcs12

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

// ToPEM converte um certificado PKCS12 para blocos PEM
func ToPEM(pfxData []byte, password string) ([]*pem.Block, error) {
	// Decodificar o arquivo PKCS12
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return nil, err
	}

	var blocks []*pem.Block

	// Certificado principal seguido da cadeia
	if certificate != nil {
		blocks = append(blocks, &pem.Block{Type: "CERTIFICATE", Bytes: certificate.Raw})
	}
	for _, cert := range caCerts {
		blocks = append(blocks, &pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
	}

	if privateKey != nil {
		pkData, err := x509.MarshalPKCS8PrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, &pem.Block{Type: "PRIVATE KEY", Bytes: pkData})
	}

	return blocks, nil
}

// TLSCertificate monta o certificado do servidor HTTPS a partir de um PKCS12
func TLSCertificate(pfxData []byte, password string) (tls.Certificate, error) {
	blocks, err := ToPEM(pfxData, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao decodificar PKCS12: %w", err)
	}

	var certPEM, keyPEM bytes.Buffer
	for _, block := range blocks {
		target := &certPEM
		if block.Type == "PRIVATE KEY" {
			target = &keyPEM
		}
		if err := pem.Encode(target, block); err != nil {
			return tls.Certificate{}, err
		}
	}

	cert, err := tls.X509KeyPair(certPEM.Bytes(), keyPEM.Bytes())
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao montar certificado TLS: %w", err)
	}
	return cert, nil
}

// LoadTLSCertificate lê o arquivo PKCS12 (.p12/.pfx) e monta o certificado TLS
func LoadTLSCertificate(path, password string) (tls.Certificate, error) {
	pfxData, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("erro ao ler certificado %s: %w", path, err)
	}
	return TLSCertificate(pfxData, password)
}
