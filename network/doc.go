// Package network describes the NEM and Symbol networks: how each family
// derives keys, encodes and validates addresses, and counts time.
//
// Network values are immutable once constructed. The built-in networks
// (NEMMainnet, NEMTestnet, SymbolMainnet, SymbolTestnet) are package-level
// values; additional networks can be loaded from configuration (see
// package netconfig) and looked up through a Locator.
package network
