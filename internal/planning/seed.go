package planning

// The built-in tutoring domain models one teaching episode for a single
// chapter: teach the concept, probe with a neutral question, branch on the
// learner's emotional reaction, and close with a final assessment once every
// branch has been visited and the learner has solved enough problems.

const defaultSubject = "ch1"

// TutoringDomain returns the built-in teaching-strategy domain for the
// given chapter subject. An empty subject defaults to "ch1".
func TutoringDomain(subject string) *Domain {
	if subject == "" {
		subject = defaultSubject
	}
	l := func(pred string) Literal { return Lit(pred, subject) }

	actions := []Action{
		NewAction("TeachConcept",
			[]Literal{l("NoKnowledge")},
			[]Literal{l("BasicUnderstanding"), l("Neutral")},
			[]Literal{l("NoKnowledge")},
		),
		NewAction("AskNeutralQuestion",
			[]Literal{l("Neutral")},
			[]Literal{
				l("ReadyForNeutralEval_Confident"),
				l("ReadyForNeutralEval_Bored"),
				l("ReadyForNeutralEval_Confused"),
				l("ReadyForNeutralEval_Frustrated"),
			},
			nil,
		),
		NewAction("EvalNeutral_Confident",
			[]Literal{l("ReadyForNeutralEval_Confident")},
			[]Literal{l("Confident"), l("BranchVisited_Confident")},
			nil,
		),
		NewAction("EvalNeutral_Bored",
			[]Literal{l("ReadyForNeutralEval_Bored")},
			[]Literal{l("Bored"), l("BranchVisited_Bored")},
			nil,
		),
		NewAction("EvalNeutral_Confused",
			[]Literal{l("ReadyForNeutralEval_Confused")},
			[]Literal{l("Confused"), l("BranchVisited_Confused")},
			nil,
		),
		NewAction("EvalNeutral_Frustrated",
			[]Literal{l("ReadyForNeutralEval_Frustrated")},
			[]Literal{l("Frustrated"), l("BranchVisited_Frustrated")},
			nil,
		),
		NewAction("GiveHardProblem_FromConfident",
			[]Literal{l("Confident")},
			[]Literal{l("SolvedMany")},
			nil,
		),
		NewAction("GiveHardProblem_FromBored",
			[]Literal{l("Bored")},
			[]Literal{l("SolvedMany")},
			nil,
		),
		NewAction("GiveEasyProblem_FromConfused",
			[]Literal{l("Confused")},
			[]Literal{l("Confident")},
			[]Literal{l("Confused")},
		),
		NewAction("GiveHint_FromFrustrated",
			[]Literal{l("Frustrated")},
			[]Literal{l("ReadyForEasyQuestion"), l("Confused")},
			[]Literal{l("Frustrated")},
		),
		NewAction("AskEasyQuestion",
			[]Literal{l("ReadyForEasyQuestion")},
			[]Literal{l("ReadyForEasyEval")},
			nil,
		),
		NewAction("EvalEasy_Solved",
			[]Literal{l("ReadyForEasyEval")},
			[]Literal{l("Confident")},
			[]Literal{l("ReadyForEasyEval")},
		),
		NewAction("FinalAssessment_AllBranches",
			[]Literal{
				l("BranchVisited_Confident"),
				l("BranchVisited_Bored"),
				l("BranchVisited_Confused"),
				l("BranchVisited_Frustrated"),
				l("SolvedMany"),
			},
			[]Literal{l("FullKnowledge")},
			nil,
		),
	}

	// The built-in actions are statically valid; a construction error here
	// is a programming bug, not a runtime condition.
	d, err := NewDomain("tutoring", actions)
	if err != nil {
		panic(err)
	}
	return d
}

// TutoringInitial returns the canonical initial state for the built-in
// domain: the learner knows nothing about the chapter.
func TutoringInitial(subject string) State {
	if subject == "" {
		subject = defaultSubject
	}
	return NewState(Lit("NoKnowledge", subject))
}

// TutoringGoal returns the canonical goal for the built-in domain.
func TutoringGoal(subject string) State {
	if subject == "" {
		subject = defaultSubject
	}
	return NewState(Lit("FullKnowledge", subject))
}
