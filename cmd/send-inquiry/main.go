package main

import (
	"bufio"
	"consulting_site_go/config"
	"consulting_site_go/services"
	"consulting_site_go/services/i18n"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

func main() {
	// Load configuration
	cfg := config.Load()

	baseURL := flag.String("url", cfg.AppURL, "base URL of the running site")
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Send Contact Inquiry ===")
	fmt.Println()

	form := services.ContactForm{
		FullName: prompt(reader, "Full name: "),
		Email:    prompt(reader, "Email: "),
		Phone:    prompt(reader, "Phone (optional): "),
		Company:  prompt(reader, "Company (optional): "),
		Budget:   prompt(reader, "Budget [<25k, 25-100k, 100-500k, 500k+] (optional): "),
		Message:  prompt(reader, "Message: "),
	}
	consent := strings.ToLower(prompt(reader, "Consent to data processing? [y/N]: "))
	form.GDPRConsent = consent == "y" || consent == "yes"

	flow := services.NewContactFlow(services.NewHTTPSubmitter(*baseURL), services.NewDecisionState())
	_, err := flow.Submit(context.Background(), form)

	var (
		validationErrs services.ValidationErrors
		submitErr      *services.SubmitError
	)
	switch {
	case errors.As(err, &validationErrs):
		fields := make([]string, 0, len(validationErrs))
		for field := range validationErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Printf("  %s: %s\n", field, i18n.Translate(i18n.DefaultLanguage, validationErrs[field]))
		}
		log.Fatal("Inquiry not sent: please fix the fields above")
	case errors.As(err, &submitErr):
		if submitErr.Transport() {
			log.Fatalf("Failed to reach %s: %v", *baseURL, submitErr.Err)
		}
		log.Fatalf("Server rejected the inquiry (%d): %s", submitErr.Status, submitErr.Message)
	case err != nil:
		log.Fatalf("Failed to send inquiry: %v", err)
	}

	fmt.Println()
	fmt.Println("✅ Inquiry sent successfully!")
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	value, _ := reader.ReadString('\n')
	return strings.TrimSpace(value)
}
