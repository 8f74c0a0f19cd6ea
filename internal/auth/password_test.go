package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2-but-longer", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2-but-longer" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "hunter2-but-longer") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	// out-of-range costs fall back to the bcrypt default instead of erroring
	for _, cost := range []int{-1, 0, 99} {
		if _, err := HashPassword("some-password", cost); err != nil {
			t.Errorf("HashPassword(cost=%d): %v", cost, err)
		}
	}
}
