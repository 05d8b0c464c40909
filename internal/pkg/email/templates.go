package email

import "fmt"

// OTPMessage builds the login verification mail for an admin.
func OTPMessage(to, name, code string, ttlMinutes int) Message {
	return Message{
		To:      to,
		Subject: "Your login verification code",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour one-time login code is: %s\n\nIt expires in %d minutes. If you did not try to sign in, you can ignore this email.\n",
			name, code, ttlMinutes,
		),
	}
}

// PasswordResetMessage builds the reset-link mail.
func PasswordResetMessage(to, name, token string) Message {
	return Message{
		To:      to,
		Subject: "Password reset request",
		Body: fmt.Sprintf(
			"Hi %s,\n\nA password reset was requested for your account. Use this token to set a new password: %s\n\nThe token expires in 1 hour. If you did not request a reset, ignore this email.\n",
			name, token,
		),
	}
}

// EnquiryNotification tells the admin inbox a new lead arrived.
func EnquiryNotification(to, enquiryType, name, email string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("New %s enquiry from %s", enquiryType, name),
		Body: fmt.Sprintf(
			"A new %s enquiry was submitted.\n\nName: %s\nEmail: %s\n\nOpen the admin panel to review it.\n",
			enquiryType, name, email,
		),
	}
}
