package common

import (
	"strconv"
	"strings"
)

// NodeInfo is what an assembler encodes in a contig name such as
// "NODE_12_length_4521_cov_17.31" (SPAdes) or "NODE_12_length_4521_cov_17.31_ID_5".
type NodeInfo struct {
	Node     int
	Length   int
	Coverage float64
}

// ParseNodeName extracts the node number, length and k-mer coverage from a
// SPAdes-style contig name. ok is false when the name does not follow that layout.
func ParseNodeName(name string) (NodeInfo, bool) {
	parts := strings.Split(name, "_")
	if len(parts) < 6 || parts[0] != "NODE" || parts[2] != "length" || parts[4] != "cov" {
		return NodeInfo{}, false
	}
	node, err := strconv.Atoi(parts[1])
	if err != nil {
		return NodeInfo{}, false
	}
	length, err := strconv.Atoi(parts[3])
	if err != nil {
		return NodeInfo{}, false
	}
	cov, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return NodeInfo{}, false
	}
	return NodeInfo{Node: node, Length: length, Coverage: cov}, true
}
