package gui

import "fmt"

// MovePair is one numbered row of the move list.
type MovePair struct {
	Index string
	White string
	Black string
}

// MovePairs groups SAN moves, white first, into numbered rows. An unfinished
// pair is kept with an empty Black.
func MovePairs(san []string) []MovePair {
	pairs := make([]MovePair, 0, (len(san)+1)/2)
	var mp MovePair
	for i, txt := range san {
		// On even indicies, write the white move / index
		if i%2 == 0 {
			mp = MovePair{Index: fmt.Sprintf("%v.", (i/2)+1), White: txt}
			continue
		}
		mp.Black = txt
		pairs = append(pairs, mp)
		mp = MovePair{}
	}
	if mp.Index != "" {
		pairs = append(pairs, mp)
	}
	return pairs
}

// RecentMoves returns at most n of the latest pairs.
func RecentMoves(san []string, n int) []MovePair {
	pairs := MovePairs(san)
	if n >= 0 && len(pairs) > n {
		return pairs[len(pairs)-n:]
	}
	return pairs
}

// FormatPair renders a pair as a fixed width line.
func FormatPair(mp MovePair) string {
	return fmt.Sprintf("%-4v %-7v %-7v", mp.Index, mp.White, mp.Black)
}
