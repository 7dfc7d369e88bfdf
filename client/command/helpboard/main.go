package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/community-aid/helpboard-api/client"
	"github.com/community-aid/helpboard-api/schema"
)

func initConfig() {
	viper.SetEnvPrefix("helpboard")
	viper.AutomaticEnv()
	viper.SetDefault("server", "http://localhost:8080")
}

func sessionDir() string {
	if dir := viper.GetString("home"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logrus.WithError(err).Fatal("resolve home directory")
	}
	return filepath.Join(home, ".helpboard")
}

func newClient() *client.Client {
	session := client.NewSession(sessionDir())
	if err := session.Restore(); err != nil {
		logrus.WithError(err).Fatal("restore session")
	}
	return client.New(viper.GetString("server"), session)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: helpboard <command> [flags]

commands:
  register        create an account and sign in
  login           sign in and store the session
  logout          clear the stored session
  whoami          show the signed-in account
  list            show the request board
  create          post a help request (needy)
  respond         respond to a request (helper)
  cancel          withdraw a response (helper)
  complete        mark a request completed (needy)
  cancel-request  cancel a request in progress (needy)
  delete          delete a request (needy)
  rate            rate a completed request 1-5 (needy)
  profile         show or update the personal profile
  health          check the server`)
	os.Exit(2)
}

func main() {
	initConfig()
	if len(os.Args) < 2 {
		usage()
	}

	c := newClient()
	repo := client.NewRepository(c)

	var err error
	switch os.Args[1] {
	case "register":
		err = runRegister(c, os.Args[2:])
	case "login":
		err = runLogin(c, os.Args[2:])
	case "logout":
		c.Logout()
		fmt.Println("signed out")
	case "whoami":
		err = runWhoami(c)
	case "list":
		err = runList(repo)
	case "create":
		err = runCreate(repo, os.Args[2:])
	case "respond":
		err = runAction(repo.Respond, os.Args[2:])
	case "cancel":
		err = runAction(repo.CancelResponse, os.Args[2:])
	case "complete":
		err = runAction(func(id int64) ([]client.DisplayRequest, error) {
			return repo.SetStatus(id, schema.StatusCompleted)
		}, os.Args[2:])
	case "cancel-request":
		err = runAction(func(id int64) ([]client.DisplayRequest, error) {
			return repo.SetStatus(id, schema.StatusCancelled)
		}, os.Args[2:])
	case "delete":
		err = runAction(repo.Delete, os.Args[2:])
	case "rate":
		err = runRate(repo, os.Args[2:])
	case "profile":
		err = runProfile(c, os.Args[2:])
	case "health":
		err = runHealth(c)
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "helpboard:", err)
		os.Exit(1)
	}
}

func runRegister(c *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	number := fs.String("number", "", "phone number")
	password := fs.String("password", "", "password")
	role := fs.String("role", "", "NEEDY or HELPER")
	fs.Parse(args)

	if err := c.Register(*email, *number, *password, *password, schema.UserRole(*role)); err != nil {
		return err
	}
	fmt.Printf("registered and signed in as %s\n", *email)
	return nil
}

func runLogin(c *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	resp, err := c.Login(*email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s (%s)\n", resp.Email, resp.UserType)
	return nil
}

func runWhoami(c *client.Client) error {
	user := c.Session().CurrentUser()
	if user == nil {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s (%s)\n", user.Email, user.UserType)
	return nil
}

func runList(repo *client.Repository) error {
	requests, err := repo.List()
	if err != nil {
		return err
	}
	printBoard(requests)
	return nil
}

func runCreate(repo *client.Repository, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	task := fs.String("task", "", "what help is needed")
	when := fs.String("when", "", "scheduled time, e.g. 2026-09-05T14:00")
	fs.Parse(args)

	requests, err := repo.Create(*task, *when)
	if err != nil {
		return err
	}
	printBoard(requests)
	return nil
}

func runAction(action func(int64) ([]client.DisplayRequest, error), args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("request id required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid request id %q", args[0])
	}

	requests, err := action(id)
	if err != nil {
		return err
	}
	printBoard(requests)
	return nil
}

func runRate(repo *client.Repository, args []string) error {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	id := fs.Int64("id", 0, "request id")
	rating := fs.Int("rating", 0, "rating from 1 to 5")
	fs.Parse(args)

	requests, err := repo.SetRating(*id, *rating)
	if err != nil {
		return err
	}
	printBoard(requests)
	return nil
}

func runProfile(c *client.Client, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	age := fs.Int("age", 0, "age")
	fs.Parse(args)

	// no flags: show the current profile
	if *name == "" && *age == 0 {
		info, err := c.MyInformation()
		if err != nil {
			return err
		}
		if info == nil {
			fmt.Println("no profile yet; set one with: helpboard profile -name <name> -age <age>")
			return nil
		}
		printInformation(info)
		return nil
	}

	existing, err := c.MyInformation()
	if err != nil {
		return err
	}

	var info *schema.Information
	if existing == nil {
		info, err = c.CreateInformation(*name, *age)
	} else {
		info, err = c.UpdateInformation(*name, *age)
	}
	if err != nil {
		return err
	}
	printInformation(info)
	return nil
}

func runHealth(c *client.Client) error {
	body, err := c.HealthCheck()
	if err != nil {
		return err
	}
	fmt.Println(body)
	return nil
}

func printBoard(requests []client.DisplayRequest) {
	if len(requests) == 0 {
		fmt.Println("no help requests")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTASK\tWHEN\tSTATUS\tAUTHOR\tRESPONDER\tRATING\tACTIONS")
	for _, req := range requests {
		rating := "-"
		if req.Rating != nil {
			rating = strconv.Itoa(*req.Rating)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			req.ID, req.Task, req.When, req.Status, req.Author, req.Responder, rating, actions(req))
	}
	w.Flush()
}

func actions(req client.DisplayRequest) string {
	var out string
	add := func(allowed bool, name string) {
		if !allowed {
			return
		}
		if out != "" {
			out += ","
		}
		out += name
	}
	add(req.CanRespond, "respond")
	add(req.CanCancel, "cancel")
	add(req.CanComplete, "complete")
	add(req.CanRate, "rate")
	add(req.CanDelete, "delete")
	return out
}

func printInformation(info *schema.Information) {
	fmt.Printf("name: %s\nage: %d\nhelps given: %d\n", info.Name, info.Age, info.CountHelps)
}
