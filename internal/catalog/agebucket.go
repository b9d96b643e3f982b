package catalog

import (
	"fmt"
	"strconv"
	"strings"

	dErrors "mcomock/pkg/domain-errors"
)

// DefaultAgeCuts is the bucket boundary list applied when a request does not
// supply its own.
const DefaultAgeCuts = "10_20_30_40_50_60_70_80_90"

// AgeBuckets expands underscore-separated cut points into displayable age
// bucket labels. Cuts "10_20" yield "[0-10 ans]", "[11-20 ans]" and
// "[21 ans et +]".
func AgeBuckets(cuts string) ([]string, error) {
	if cuts == "" {
		cuts = DefaultAgeCuts
	}
	parts := strings.Split(cuts, "_")
	bounds := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid age cut %q", p))
		}
		bounds = append(bounds, n)
	}

	labels := make([]string, 0, len(bounds)+1)
	labels = append(labels, fmt.Sprintf("[0-%d ans]", bounds[0]))
	for i := 1; i < len(bounds); i++ {
		labels = append(labels, fmt.Sprintf("[%d-%d ans]", bounds[i-1]+1, bounds[i]))
	}
	labels = append(labels, fmt.Sprintf("[%d ans et +]", bounds[len(bounds)-1]+1))
	return labels, nil
}
