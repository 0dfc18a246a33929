// Package cryptoalg defines the algorithm identifiers, provider contract and error taxonomy for
// RSA signing, verification, encryption and decryption on behalf of JWS and JWE processing.
package cryptoalg
