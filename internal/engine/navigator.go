package engine

import "github.com/CleanExpo/RestoreAssist-sub016/internal/domain"

// NextQuestion returns the next visible question after currentIndex in the
// ordered working set. currentIndex of -1 means nothing has been presented
// yet. A skip rule firing on the current question moves the scan to the
// rule's target, and the target itself is still subject to visibility.
// Running off the end is the terminal state.
func NextQuestion(currentIndex int, ordered []domain.Question, answers *domain.AnswerMap) (domain.Question, bool) {
	start := currentIndex + 1
	if start < 0 {
		start = 0
	}
	if currentIndex >= 0 && currentIndex < len(ordered) {
		if skip := EvaluateSkip(ordered[currentIndex], answers, ordered); skip.ShouldSkip {
			if idx := indexOf(ordered, skip.NextQuestionID); idx >= 0 {
				start = idx
			}
		}
	}
	for i := start; i < len(ordered); i++ {
		if ShouldShow(ordered[i], answers) {
			return ordered[i], true
		}
	}
	return domain.Question{}, false
}

func indexOf(questions []domain.Question, id string) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
