// Package version produces independently shuffled copies of an assessment,
// one per version letter, for anti-cheating distribution.
package version

import (
	"errors"
	"math/rand"

	"github.com/mind-engage/examkit/internal/assessment"
)

// ErrEmptyLetter is returned when a version is requested without a letter.
var ErrEmptyLetter = errors.New("version letter must not be empty")

// Generate returns a deep, shuffled copy of src identified by letter. The
// shuffle is driven by a PRNG owned by this call and seeded from the letter
// alone, so repeated calls with the same inputs are bit-identical and
// concurrent calls never share random state.
//
// Question order is shuffled within the top-level list and within each
// section; multiple_choice options are shuffled per question on the same
// stream. CorrectAnswer is resolved to option content against the pre-shuffle
// options and rewritten to the content's post-shuffle letter, so the answer
// keeps designating the same text no matter where it lands.
func Generate(src assessment.Assessment, letter string) (assessment.Version, error) {
	if letter == "" {
		return assessment.Version{}, ErrEmptyLetter
	}
	rnd := rand.New(rand.NewSource(seed(letter)))

	a := src.Clone()
	shuffleQuestions(rnd, a.Questions)
	for i := range a.Sections {
		shuffleQuestions(rnd, a.Sections[i].Questions)
	}

	shuffledOptions := false
	reletter := func(qs []assessment.Question) {
		for i := range qs {
			if qs[i].Type != assessment.TypeMultipleChoice || len(qs[i].Options) < 2 {
				continue
			}
			shuffleOptions(rnd, &qs[i])
			shuffledOptions = true
		}
	}
	reletter(a.Questions)
	for i := range a.Sections {
		reletter(a.Sections[i].Questions)
	}

	return assessment.Version{
		Letter:     letter,
		Assessment: a,
		Meta: assessment.VariationMeta{
			ShuffledQuestionOrder: a.QuestionCount() > 1,
			ShuffledOptions:       shuffledOptions,
		},
	}, nil
}

func shuffleQuestions(rnd *rand.Rand, qs []assessment.Question) {
	rnd.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
}

// shuffleOptions permutes q.Options and rebinds CorrectAnswer by content.
// Resolution happens before the shuffle; tracking the letter through the
// permutation instead would lose the binding to what the answer means.
func shuffleOptions(rnd *rand.Rand, q *assessment.Question) {
	content, resolvable := assessment.CorrectOptionText(*q)
	rnd.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
	if !resolvable {
		return
	}
	for i, opt := range q.Options {
		if opt == content {
			q.CorrectAnswer = assessment.OptionLetter(i)
			return
		}
	}
}

// seed derives the PRNG seed from the letter's ordinal values. "A", "B" and
// "C" map to distinct streams; multi-character identifiers work too.
func seed(letter string) int64 {
	var s int64 = 17
	for _, r := range letter {
		s = s*31 + int64(r)
	}
	return s
}
