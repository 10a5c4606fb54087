package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"hotel-backoffice/pkg/utils"
)

// Печатает bcrypt-хеш пароля. Пароль берётся из -password или из stdin.
func main() {
	password := flag.String("password", "", "пароль для хеширования")
	flag.Parse()

	if *password == "" {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("Не удалось прочитать пароль: %v", err)
		}
		*password = strings.TrimSpace(line)
	}
	if *password == "" {
		log.Fatal("Пустой пароль")
	}

	hashedPassword, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Ошибка при генерации хеша: %v", err)
	}

	fmt.Println(hashedPassword)
}
