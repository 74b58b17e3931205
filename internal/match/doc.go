// Package match implements nearest-prototype matching and orphan counting.
//
// Every source prototype votes for its nearest target prototype. Targets that
// receive no vote are orphans. The scan is O(|sources| * |targets|) distance
// evaluations and is generic over the prototype representation, so custom
// prototype types work with custom distance functions.
package match
