package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhoneValidation(t *testing.T) {
	v := NewValidator()

	valid := SignupRequest{Name: "Asha Rao", Email: "asha@example.com", PhoneNo: "+91 9876543210", Password: "Secret@123"}
	require.NoError(t, v.Struct(valid))

	for _, phone := range []string{"9876543210", "+91 987654321", "+919876543210", "+91 98765432100"} {
		invalid := valid
		invalid.PhoneNo = phone
		err := v.Struct(invalid)
		require.Error(t, err, "phone %q should be rejected", phone)
		require.Equal(t, "Phone number must be in the format +91 9876543210", ValidationMessage(err))
	}
}

func TestPotencyAndMeasureValidation(t *testing.T) {
	v := NewValidator()

	base := MedicineRequest{
		Name:     "Arnica Montana",
		Brand:    "SBL",
		Potency:  "30C",
		Size:     "100ml",
		Quantity: 2,
		Location: LocationPayload{Row: 1, Col: 1, Shelf: "left"},
	}
	require.NoError(t, v.Struct(base))

	for _, potency := range []string{"C30", "30", "thirtyC"} {
		invalid := base
		invalid.Potency = potency
		require.Error(t, v.Struct(invalid), "potency %q should be rejected", potency)
	}

	for _, size := range []string{"100", "ml100", "100kg"} {
		invalid := base
		invalid.Size = size
		require.Error(t, v.Struct(invalid), "size %q should be rejected", size)
	}
}

func TestStrongPassword(t *testing.T) {
	require.True(t, isStrongPassword("Secret@123"))

	// One missing character class each, then a disallowed character.
	require.False(t, isStrongPassword("secret@123"))
	require.False(t, isStrongPassword("SECRET@123"))
	require.False(t, isStrongPassword("Secret@abc"))
	require.False(t, isStrongPassword("Secret1234"))
	require.False(t, isStrongPassword("Secret@123#"))
}

func TestValidationMessageJoinsViolations(t *testing.T) {
	v := NewValidator()

	err := v.Struct(SignupRequest{Name: "Al", Email: "not-an-email", PhoneNo: "+91 9876543210", Password: "Secret@123"})
	require.Error(t, err)
	require.Equal(t, "Name is too short, Invalid email!", ValidationMessage(err))
}
