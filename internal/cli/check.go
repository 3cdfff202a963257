package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/chat"
	"github.com/tauqeerkhan/portfolio/internal/contact"
	"github.com/tauqeerkhan/portfolio/internal/content"
	"github.com/tauqeerkhan/portfolio/internal/tour"
	"github.com/tauqeerkhan/portfolio/internal/web"
)

func newCheckTourCommand(app *App) *cobra.Command {
	var variants []string
	cmd := &cobra.Command{
		Use:   "check-tour",
		Short: "Verify every tour step can find its section on the rendered page",
		Long: `Renders the home page of each variant and walks the tour's selector
chain for every step, the same way the browser does.

Exits non-zero when any step targets a section the page does not render.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(variants) == 0 {
				variants = content.Keys()
			}
			misses, err := checkTour(cmd.Context(), cmd.OutOrStdout(), variants)
			if err != nil {
				return err
			}
			if misses > 0 {
				return NewExitError(1)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&variants, "variant", "v", nil, "variants to check (default all)")
	return cmd
}

// checkTour reports each step of each variant and returns how many steps
// could not be located.
func checkTour(ctx context.Context, out io.Writer, variants []string) (int, error) {
	gin.SetMode(gin.ReleaseMode)
	site, err := web.New(web.Options{
		Log:     zap.NewNop(),
		Contact: contact.NewService(nil, nil, nil),
		Chat:    chat.NewBot(chat.Unconfigured{}, nil),
	})
	if err != nil {
		return 0, err
	}

	misses := 0
	for _, key := range variants {
		v, err := content.Lookup(key)
		if err != nil {
			return misses, err
		}
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%s)", v.Owner, v.Key)))

		doc, err := renderPage(site.Handler(), key)
		if err != nil {
			return misses, err
		}
		nav := tour.NewNavigator(doc, v.Timing, nil)
		for i, st := range v.Steps.Steps() {
			_, sel, err := nav.Locate(ctx, st.Section)
			if err != nil {
				misses++
				fmt.Fprintf(out, "  %s %2d %-14s %s\n", failStyle.Render("✗"), i+1, st.ID, failStyle.Render("section "+st.Section+" not found"))
				continue
			}
			fmt.Fprintf(out, "  %s %2d %-14s %s\n", okStyle.Render("✓"), i+1, st.ID, mutedStyle.Render(fmt.Sprintf("%s via %s", st.Section, sel.Kind)))
		}
	}
	if misses > 0 {
		fmt.Fprintln(out, failStyle.Render(fmt.Sprintf("%d step(s) cannot be located", misses)))
	} else {
		fmt.Fprintln(out, okStyle.Render("all tour steps located"))
	}
	return misses, nil
}

func renderPage(h http.Handler, variant string) (*tour.Document, error) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?variant="+variant, nil))
	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("render %s: status %d", variant, rec.Code)
	}
	return tour.ParseDocument(rec.Body)
}
