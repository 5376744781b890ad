package services

import "testing"

func TestMustStrftime_PanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected an invalid pattern to panic")
		}
	}()
	mustStrftime("%Q")
}
