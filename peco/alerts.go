package peco

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// alertDeployment mirrors the alert deployment document. There is only ever
// one deployed alert at a time on the PECO map.
type alertDeployment struct {
	Embedded struct {
		DeployedAlertResourceList []struct {
			Data []struct {
				BannerTitle string `json:"bannerTitle"`
				Content     string `json:"content"`
			} `json:"data"`
		} `json:"deployedAlertResourceList"`
	} `json:"_embedded"`
}

// GetMapAlerts returns the banner alert currently deployed on the outage
// map. When no alert is deployed the result is empty and no error is
// returned; an absent alert is a normal condition, not a failure.
func (c *Client) GetMapAlerts(ctx context.Context) (AlertResults, error) {
	var state currentState
	if err := c.getJSON(ctx, c.currentStateURL, &state); err != nil {
		return AlertResults{}, err
	}

	deploymentID := state.ControlCenter.AlertDeploymentID
	if deploymentID == "" {
		return AlertResults{}, nil
	}

	var deployment alertDeployment
	if err := c.getJSON(ctx, fmt.Sprintf(c.alertsURLFormat, deploymentID), &deployment); err != nil {
		return AlertResults{}, err
	}

	list := deployment.Embedded.DeployedAlertResourceList
	if len(list) == 0 || len(list[0].Data) == 0 {
		// Deployment exists but carries no alert content.
		return AlertResults{}, nil
	}

	alert := list[0].Data[0]
	content, err := stripAlertHTML(alert.Content)
	if err != nil {
		return AlertResults{}, &ParseError{Reason: "alert content is not parseable HTML", Err: err}
	}

	return AlertResults{
		AlertTitle:   alert.BannerTitle,
		AlertContent: content,
	}, nil
}

// stripAlertHTML reduces the alert's HTML content to plain text. Line breaks
// become paragraph breaks; all other markup is dropped.
func stripAlertHTML(content string) (string, error) {
	content = strings.ReplaceAll(content, "<br />", "\n\n")
	content = strings.ReplaceAll(content, "<br/>", "\n\n")
	content = strings.ReplaceAll(content, "<br>", "\n\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Text()), nil
}
