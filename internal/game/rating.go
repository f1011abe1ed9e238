package game

// Rating returns the results title for score out of total
func Rating(score, total int) string {
	if total <= 0 {
		return "Great Attempt!"
	}

	percent := float64(score) / float64(total) * 100
	switch {
	case percent >= 100:
		return "Perfect Score!"
	case percent >= 70:
		return "Spelling Wizard!"
	case percent >= 50:
		return "Awesome Job!"
	default:
		return "Great Attempt!"
	}
}
