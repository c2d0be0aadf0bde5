package robots

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	headRE = regexp.MustCompile(`Blueprint\s+\d+\s*:`)
	intRE  = regexp.MustCompile(`\d+`)
)

// Parse reads blueprints of the form
//
//	Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore.
//	Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore
//	and 7 obsidian.
//
// A blueprint may span several lines; each one starts at "Blueprint N:".
// Exactly seven numbers must follow from there: the ID and six prices.
func Parse(r io.Reader) ([]Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("robots: read input: %w", err)
	}
	text := string(data)

	starts := headRE.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: no \"Blueprint N:\" header", ErrBadBlueprint)
	}
	if lead := strings.TrimSpace(text[:starts[0][0]]); lead != "" {
		return nil, fmt.Errorf("%w: unexpected text %q", ErrBadBlueprint, lead)
	}

	out := make([]Blueprint, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		bp, err := parseOne(text[loc[0]:end])
		if err != nil {
			return nil, fmt.Errorf("blueprint #%d: %w", i+1, err)
		}
		out = append(out, bp)
	}

	return out, nil
}

func parseOne(s string) (Blueprint, error) {
	raw := intRE.FindAllString(s, -1)
	if len(raw) != 7 {
		return Blueprint{}, fmt.Errorf("%w: want 7 numbers, got %d", ErrBadBlueprint, len(raw))
	}
	n := make([]int, len(raw))
	for i, r := range raw {
		v, err := strconv.Atoi(r)
		if err != nil {
			return Blueprint{}, fmt.Errorf("%w: %q: %w", ErrBadBlueprint, r, err)
		}
		n[i] = v
	}

	return Blueprint{
		ID: n[0],
		Costs: [Kinds]Cost{
			Ore:      {n[1], 0, 0},
			Clay:     {n[2], 0, 0},
			Obsidian: {n[3], n[4], 0},
			Geode:    {n[5], 0, n[6]},
		},
	}, nil
}
