package flappy

// Verdict returns the closing remark for a final score.
func Verdict(score int) []string {
	switch {
	case score > 100:
		return []string{
			"Wow, you're pretty good at this!",
			"I didn't think anyone would play this far",
		}
	case score > 10:
		return []string{"You did pretty well!"}
	default:
		return []string{"Better luck next time!"}
	}
}
