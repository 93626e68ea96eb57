package confidence

import "testing"

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr bool
	}{
		{"fresh record", NewRecord(1, 2), false},
		{"full history", Record{Score: 0.8, Attempts: 4, TotalQuestions: 12, CorrectAnswers: 10}, false},
		{"score above one", Record{Score: 1.2}, true},
		{"score below zero", Record{Score: -0.1}, true},
		{"negative attempts", Record{Score: 0.5, Attempts: -1}, true},
		{"negative counters", Record{Score: 0.5, TotalQuestions: -3}, true},
		{"correct exceeds total", Record{Score: 0.5, TotalQuestions: 3, CorrectAnswers: 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestRecord_Accuracy(t *testing.T) {
	if got := (Record{}).Accuracy(); got != DefaultScore {
		t.Errorf("Accuracy with no history = %v, want %v", got, DefaultScore)
	}
	if got := (Record{TotalQuestions: 8, CorrectAnswers: 6}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestOutcome_Counts(t *testing.T) {
	out := Outcome{Results: []bool{true, false, true, true}}
	if out.Total() != 4 {
		t.Errorf("Total = %d, want 4", out.Total())
	}
	if out.Correct() != 3 {
		t.Errorf("Correct = %d, want 3", out.Correct())
	}
}
