package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

var commonFirstNames = []string{
	"Ahmed", "Ali", "Fatima", "Ayesha", "Hassan", "Zainab", "Usman", "Sana",
	"Bilal", "Maryam", "Omar", "Hira", "Imran", "Nadia", "Kamran", "Sadia",
	"Tariq", "Amina", "Faisal", "Rabia",
}
var commonLastNames = []string{
	"Khan", "Malik", "Ahmed", "Sheikh", "Butt", "Raza", "Hussain", "Qureshi",
	"Javed", "Iqbal", "Chaudhry", "Siddiqui", "Abbasi", "Farooq", "Baig",
}

var doctorFields = []string{
	"Cardiology", "Dermatology", "Neurology", "Orthopedics", "Pediatrics",
	"Psychiatry", "Radiology", "General Medicine",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var digits = "0123456789"

func GenerateEmailFromFullName(fullName string, emailDomainName string) string {
	local := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}

// CNIC format used throughout: 5 digits, 7 digits, 1 check digit.
func GenerateRandomCNIC() string {
	return fmt.Sprintf("%05d-%07d-%d", rand.Intn(100000), rand.Intn(10000000), rand.Intn(10))
}

func GenerateRandomUser(role domain.Role, password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        GenerateEmailFromFullName(fullName, emailDomainName),
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		CNIC:         GenerateRandomCNIC(),
		Role:         role,
		IsActive:     true,
	}

	return user, nil
}

func GenerateRandomDoctorProfile(userID int64) *domain.DoctorProfile {
	start := rand.Intn(14) + 8 // 08:00 ~ 21:00

	// cap the slot count so the shift never crosses midnight
	maxCount := 24 - start
	if maxCount > 7 {
		maxCount = 7
	}

	return &domain.DoctorProfile{
		UserID:         userID,
		Field:          doctorFields[rand.Intn(len(doctorFields))],
		Fee:            int64(rand.Intn(40)+10) * 100,
		ShiftStartHour: start,
		SlotCount:      rand.Intn(maxCount-1) + 2,
	}
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
