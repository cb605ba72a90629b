package choropleth

import (
	"bytes"
	"fmt"
	"html/template"
)

var popupTemplate = template.Must(template.New("popup").Parse(`<div class="cell-popup">
  <h3>{{.Title}}</h3>
  <table>
    <tbody>
      {{- range .Rows}}
      <tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
      {{- end}}
    </tbody>
  </table>
</div>`))

// PopupHTML - HTML попапа полигона
func PopupHTML(p Popup) (string, error) {
	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render popup %s: %w", p.Token, err)
	}
	return buf.String(), nil
}
