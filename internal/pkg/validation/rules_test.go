package validation

import "testing"

func TestStudentIDBounds(t *testing.T) {
	valid := []string{"201500000", "201999999", "202000001", "202212345"}
	for _, id := range valid {
		if !IsValidStudentID(id) {
			t.Errorf("expected %q to be valid", id)
		}
	}

	invalid := []string{
		"201412345", // year below range
		"202312345", // year above range
		"20220123",  // too short
		"2022012345",
		"abcd12345",
		"",
	}
	for _, id := range invalid {
		if IsValidStudentID(id) {
			t.Errorf("expected %q to be invalid", id)
		}
	}
}

func TestPhonePattern(t *testing.T) {
	valid := []string{"+77011234567", "77011234567", "7123456"}
	for _, p := range valid {
		if !IsValidPhone(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}
	invalid := []string{"+8701123456", "712345", "+7 701 123", ""}
	for _, p := range invalid {
		if IsValidPhone(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestEmailPattern(t *testing.T) {
	if !IsValidEmail("student@univ.edu.kz") {
		t.Errorf("expected address to be valid")
	}
	for _, e := range []string{"not-an-email", "a@b", ""} {
		if IsValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestBlankAndWordCount(t *testing.T) {
	if !IsBlank("   \t\n") {
		t.Errorf("whitespace should be blank")
	}
	if IsBlank(" x ") {
		t.Errorf("non-empty text should not be blank")
	}
	if got := WordCount("one two  three\nfour"); got != 4 {
		t.Errorf("expected 4 words, got %d", got)
	}
}

func TestStrongPassword(t *testing.T) {
	if !IsStrongPassword("passw0rd") {
		t.Errorf("expected mixed password to pass")
	}
	for _, p := range []string{"short1", "allletters", "12345678"} {
		if IsStrongPassword(p) {
			t.Errorf("expected %q to be rejected", p)
		}
	}
}
