// Package seq holds elementary sequence types shared across the module:
// bases, amino acids and raw sequences, with complement helpers for
// moving between strands.
package seq

// Base is a single nucleotide.
type Base = byte

// AminoAcid is a single amino acid in one-letter code.
type AminoAcid = byte

// Sequence is a biological sequence of bases or amino acids.
type Sequence = []byte

// complement maps each IUPAC nucleotide code to its complement,
// preserving case. Unmapped bytes complement to 'N'.
var complement [256]Base

func init() {
	pairs := []struct{ a, b Base }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'},
		{'B', 'V'}, {'D', 'H'},
		{'S', 'S'}, {'W', 'W'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
		complement[p.a+'a'-'A'] = p.b + 'a' - 'A'
		complement[p.b+'a'-'A'] = p.a + 'a' - 'A'
	}
}

// Complement returns the complement of a single base.
func Complement(b Base) Base {
	c := complement[b]
	if c == 0 {
		return 'N'
	}
	return c
}

// ReverseComplement returns the reverse complement of a DNA sequence as
// a new sequence. Reverse-strand features need their reference sequence
// reverse complemented to read in transcription order.
func ReverseComplement(s Sequence) Sequence {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make(Sequence, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(s[n-1-i])
	}
	return out
}
