package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/mcoot/foundry/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	case response.User:
		o.printUser(v)
	case []response.Table:
		o.printTables(v)
	case response.Item:
		o.printItems([]response.Item{v})
	case []response.Item:
		o.printItems(v)
	case response.Recipe:
		o.printRecipes([]response.Recipe{v})
	case []response.Recipe:
		o.printRecipes(v)
	case []response.StagingItem:
		o.printStaging(v)
	case response.Distribution:
		_, _ = fmt.Fprintf(o.w, "Distributed %d item(s) to table %s\n", v.Distributed, v.TableID)
	case []response.LobbyItem:
		o.printLobby(v)
	case response.Inventory:
		o.printInventory(v)
	case []response.ActivePlayer:
		o.printPlayers(v)
	case response.PasswordCheck:
		_, _ = fmt.Fprintf(o.w, "Table %s unlocked\n", v.TableID)
	case []response.AuctionListing:
		o.printListings(v)
	case response.ChatMessage:
		o.printChat([]response.ChatMessage{v})
	case []response.ChatMessage:
		o.printChat(v)
	case response.GlobalChatMessage:
		o.printGlobalChat([]response.GlobalChatMessage{v})
	case []response.GlobalChatMessage:
		o.printGlobalChat(v)
	case []response.LogEntry:
		o.printEvents(v)
	case response.Health:
		_, _ = fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// table writes aligned rows under a header
func (o *Output) table(header string, rows func(w io.Writer)) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func (o *Output) printSession(s response.Session) {
	if !s.Authenticated || s.User == nil {
		_, _ = fmt.Fprintln(o.w, "Not logged in")
		return
	}
	_, _ = fmt.Fprintf(o.w, "Logged in as %s (%s)\n", s.User.Username, s.User.Role)
}

func (o *Output) printUser(u response.User) {
	_, _ = fmt.Fprintf(o.w, "User: %s (%s)\n", u.Username, u.ID)
	_, _ = fmt.Fprintf(o.w, "Role: %s\n", u.Role)
}

func (o *Output) printTables(tables []response.Table) {
	o.table("ID\tNAME\tPLAYERS\tDESCRIPTION", func(w io.Writer) {
		for _, t := range tables {
			players := strconv.Itoa(t.Players)
			if t.MaxPlayers > 0 {
				players += "/" + strconv.Itoa(t.MaxPlayers)
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, players, t.Description)
		}
	})
}

func (o *Output) printItems(items []response.Item) {
	o.table("ID\tNAME\tRARITY\tCATEGORY\tWEIGHT", func(w io.Writer) {
		for _, it := range items {
			_, _ = fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%g\n", it.ID, it.Icon, it.Name, it.Rarity, it.Category, it.Weight)
		}
	})
}

func (o *Output) printRecipes(recipes []response.Recipe) {
	o.table("ID\tNAME\tINGREDIENTS\tRESULT", func(w io.Writer) {
		for _, r := range recipes {
			ingredients := ""
			for i, ing := range r.Ingredients {
				if i > 0 {
					ingredients += " + "
				}
				ingredients += fmt.Sprintf("%s x%d", ing.ItemID, ing.Quantity)
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, ingredients, r.ResultItemID)
		}
	})
}

func (o *Output) printStaging(staging []response.StagingItem) {
	if len(staging) == 0 {
		_, _ = fmt.Fprintln(o.w, "Staging is empty")
		return
	}
	o.table("ITEM\tQUANTITY", func(w io.Writer) {
		for _, s := range staging {
			_, _ = fmt.Fprintf(w, "%s\t%d\n", s.ItemID, s.Quantity)
		}
	})
}

func (o *Output) printLobby(items []response.LobbyItem) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(o.w, "The lobby is empty")
		return
	}
	o.table("ID\tITEM\tRARITY", func(w io.Writer) {
		for _, li := range items {
			_, _ = fmt.Fprintf(w, "%s\t%s %s\t%s\n", li.ID, li.Item.Icon, li.Item.Name, li.Item.Rarity)
		}
	})
}

func (o *Output) printInventory(inv response.Inventory) {
	_, _ = fmt.Fprintf(o.w, "Inventory at table %s\n", inv.TableID)
	if len(inv.Items) > 0 {
		o.table("ID\tITEM\tQTY\tRARITY\tWEIGHT", func(w io.Writer) {
			for _, it := range inv.Items {
				_, _ = fmt.Fprintf(w, "%s\t%s %s\t%d\t%s\t%g\n", it.ID, it.Icon, it.Name, it.Quantity, it.Rarity, it.Weight)
			}
		})
	}
	s := inv.Summary
	_, _ = fmt.Fprintf(o.w, "Total: %d item(s), %d unique, %d rare or better, weight %g\n",
		s.TotalQuantity, s.UniqueItems, s.RareOrBetter, s.TotalWeight)
}

func (o *Output) printPlayers(players []response.ActivePlayer) {
	if len(players) == 0 {
		_, _ = fmt.Fprintln(o.w, "Nobody is at this table")
		return
	}
	o.table("USER\tNAME\tROLE\tJOINED", func(w io.Writer) {
		for _, p := range players {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.UserID, p.Username, p.Role, p.JoinedAt.Format(time.DateTime))
		}
	})
}

func (o *Output) printListings(listings []response.AuctionListing) {
	if len(listings) == 0 {
		_, _ = fmt.Fprintln(o.w, "No listings")
		return
	}
	o.table("ID\tITEM\tPRICE\tSELLER", func(w io.Writer) {
		for _, l := range listings {
			_, _ = fmt.Fprintf(w, "%s\t%s %s\t%d\t%s\n", l.ID, l.Item.Icon, l.Item.Name, l.Price, l.SellerName)
		}
	})
}

func (o *Output) printChat(messages []response.ChatMessage) {
	for _, m := range messages {
		line := fmt.Sprintf("[%s] %s: %s", m.Timestamp.Format(time.TimeOnly), m.Username, m.Message)
		if m.Item != nil {
			line += fmt.Sprintf(" [%s %s]", m.Item.Icon, m.Item.Name)
		}
		_, _ = fmt.Fprintln(o.w, line)
	}
}

func (o *Output) printGlobalChat(messages []response.GlobalChatMessage) {
	for _, m := range messages {
		_, _ = fmt.Fprintf(o.w, "[%s] %s: %s\n", m.Timestamp.Format(time.TimeOnly), m.Username, m.Message)
	}
}

func (o *Output) printEvents(entries []response.LogEntry) {
	for _, e := range entries {
		_, _ = fmt.Fprintf(o.w, "%s  %-7s  %s\n", e.Timestamp.Format(time.DateTime), e.Type, e.Message)
	}
}
