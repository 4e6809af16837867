package game

// BullsCows scores guess against secret. Both must be the same length and
// consist of '0'-'9' only.
func BullsCows(secret, guess string) (bulls, cows int) {
	n := len(secret)

	// bulls
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		if secret[i] == guess[i] {
			bulls++
			used[i] = true
		}
	}

	// counts for remaining
	var cntS [10]int
	var cntG [10]int

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		cntS[int(secret[i]-'0')]++
		cntG[int(guess[i]-'0')]++
	}

	for d := 0; d < 10; d++ {
		cows += min(cntS[d], cntG[d])
	}

	return bulls, cows
}
