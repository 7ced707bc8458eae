// SPDX-License-Identifier: MIT
// Package: wlrefine/builder
//
// id_fn.go - node-ID schemes and their names.
//
// Every scheme maps a construction index to an ID. Schemes reachable by
// name (IDScheme) are total on idx ≥ 0, so they are safe for scenario
// documents; SymbolIDFn is not, and is only offered as a function.

package builder

import (
	"fmt"
	"sort"
	"strconv"
)

// IDFn generates a node identifier from its zero-based construction index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// Names accepted by IDScheme.
const (
	IDSchemeDecimal = "decimal" // 0, 1, …, 10
	IDSchemeExcel   = "excel"   // A, …, Z, AA, AB
	IDSchemeBase36  = "base36"  // 0, …, z, 10
	IDSchemeHex     = "hex"     // 0, …, f, 10
)

var idSchemes = map[string]IDFn{
	IDSchemeDecimal: DefaultIDFn,
	IDSchemeExcel:   ExcelColumnIDFn,
	IDSchemeBase36:  AlphanumericIDFn,
	IDSchemeHex:     HexIDFn,
}

// IDScheme returns the scheme registered under name, or ErrUnknownIDScheme.
func IDScheme(name string) (IDFn, error) {
	fn, ok := idSchemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownIDScheme, name, IDSchemes())
	}
	return fn, nil
}

// IDSchemes lists the names IDScheme accepts, sorted.
func IDSchemes() []string {
	names := make([]string, 0, len(idSchemes))
	for name := range idSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultIDFn is the decimal scheme: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// AlphanumericIDFn is base 36: 10→"a", 35→"z", 36→"10". Panics on idx < 0.
func AlphanumericIDFn(idx int) string {
	return radixID("AlphanumericIDFn", idx, 36)
}

// HexIDFn is lowercase base 16: 10→"a", 255→"ff". Panics on idx < 0.
func HexIDFn(idx int) string {
	return radixID("HexIDFn", idx, 16)
}

func radixID(name string, idx, base int) string {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", name, idx))
	}
	return strconv.FormatInt(int64(idx), base)
}

// ExcelColumnIDFn names spreadsheet columns: 0→"A", 25→"Z", 26→"AA",
// 701→"ZZ", 702→"AAA". Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}
	return string(buf[pos:])
}

// PrefixedIDFn returns prefix followed by the decimal index: "v0", "v1", …
// The returned function panics on idx < 0.
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedIDFn(%q): idx must be ≥ 0, got %d", prefix, idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
