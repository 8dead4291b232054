package session

import (
	"fmt"

	"github.com/hellperdev/contactbook/schema"
)

// PrintSessionStatus prints session store status information.
func PrintSessionStatus(status schema.SessionStatus) {
	fmt.Printf("Session Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Authenticated: %t\n", status.Authenticated)
	if status.Authenticated {
		fmt.Printf("Login: %s\n", status.Login)
		fmt.Printf("Last Updated: %s\n", status.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}
