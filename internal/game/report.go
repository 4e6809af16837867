package game

import "fmt"

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatScore renders "2 bulls, 1 cow".
func FormatScore(bulls, cows int) string {
	return plural(bulls, "bull", "bulls") + ", " + plural(cows, "cow", "cows")
}

// FormatWin renders the congratulation line.
func FormatWin(secret Secret, attempts int) string {
	return fmt.Sprintf("Correct! You guessed the number %s in %s.",
		secret, plural(attempts, "attempt", "attempts"))
}
