// Package mail provides concrete implementations of the MailerService.
package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"estagiohub/internal/domain/entity"
	"estagiohub/internal/errors"
)

// message is a rendered e-mail ready for transport.
type message struct {
	Subject string
	Text    string
	HTML    string
}

type welcomeData struct {
	Email string
}

type resetPasswordData struct {
	Email       string
	Code        string
	FrontendURL string
}

type internshipData struct {
	Email        string
	Organization string
	Reason       string
}

var (
	welcomeHTML = template.Must(template.New("welcome").Parse(`
<p>Olá <strong>{{.Email}}</strong>,</p>
<p>Obrigado por se cadastrar no EstagioHub. Você agora pode gerenciar suas atividades de estágio.</p>
<p>Atenciosamente,<br/>Equipe EstagioHub</p>
`))

	resetPasswordHTML = template.Must(template.New("reset_password").Parse(`
<p>Olá <strong>{{.Email}}</strong>,</p>
<p>Este é o seu código de redefinição de senha:</p>
<sub>{{.Code}}</sub>
<p>Recebemos uma solicitação para redefinir sua senha. Clique no link abaixo para criar uma nova senha:</p>
<p><a href="{{.FrontendURL}}/forgot-password">Redefinir Senha</a></p>
<p>Se você não fez essa solicitação, pode ignorar este e-mail.</p>
<p>Atenciosamente,<br/>Equipe EstagioHub</p>
`))

	approvedHTML = template.Must(template.New("approved").Parse(`
<p>Olá <strong>{{.Email}}</strong>,</p>
<p>Sua solicitação de estágio para {{.Organization}} foi aprovada.</p>
<p>Aguarde o envio dos documentos para assinatura ou a chamada do seu orientador.</p>
<p>Atenciosamente,<br/>Equipe EstagioHub</p>
`))

	rejectedHTML = template.Must(template.New("rejected").Parse(`
<p>Olá <strong>{{.Email}}</strong>,</p>
<p>Sua solicitação de estágio para {{.Organization}} foi rejeitada.</p>
<q>{{.Reason}}</q>
<p>Por favor, tente novamente ou entre em contato com o orientador do seu estágio.</p>
<p>Atenciosamente,<br/>Equipe EstagioHub</p>
`))

	canceledHTML = template.Must(template.New("canceled").Parse(`
<p>Olá <strong>{{.Email}}</strong>,</p>
<p>Sua solicitação de estágio para {{.Organization}} foi cancelada.</p>
<q>{{.Reason}}</q>
<p>Atenciosamente,<br/>Equipe EstagioHub</p>
`))

	closedHTML = template.Must(template.New("closed").Parse(`
<p>Olá <strong>{{.Email}}</strong>,</p>
<p>Seu estágio para {{.Organization}} foi encerrado.</p>
<q>{{.Reason}}</q>
<p>Atenciosamente,<br/>Equipe EstagioHub</p>
`))
)

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "render template %s", tmpl.Name())
	}

	return buf.String(), nil
}

func buildWelcomeMessage(email string) (*message, error) {
	html, err := render(welcomeHTML, welcomeData{Email: email})
	if err != nil {
		return nil, err
	}

	return &message{
		Subject: "Bem-vindo ao EstagioHub",
		Text: fmt.Sprintf("Olá %s,\n\nObrigado por se cadastrar no EstagioHub. "+
			"Você agora pode gerenciar suas atividades de estágio.\n\nAtenciosamente,\nEquipe EstagioHub", email),
		HTML: html,
	}, nil
}

func buildResetPasswordMessage(email, code, frontendURL string) (*message, error) {
	html, err := render(resetPasswordHTML, resetPasswordData{Email: email, Code: code, FrontendURL: frontendURL})
	if err != nil {
		return nil, err
	}

	return &message{
		Subject: "Solicitação de Redefinição de Senha",
		Text: fmt.Sprintf("Olá %s,\n\nEste é o seu código de redefinição de senha: %s\n\n"+
			"Recebemos uma solicitação para redefinir sua senha. Acesse o link abaixo para criar uma nova senha:\n"+
			"%s/forgot-password\n\nSe você não fez essa solicitação, pode ignorar este e-mail.\n\n"+
			"Atenciosamente,\nEquipe EstagioHub", email, code, frontendURL),
		HTML: html,
	}, nil
}

func buildApprovedMessage(internship *entity.Internship) (*message, error) {
	data := internshipData{
		Email:        internship.Student.User.Email,
		Organization: internship.Organization.BusinessName,
	}
	html, err := render(approvedHTML, data)
	if err != nil {
		return nil, err
	}

	return &message{
		Subject: "Solicitação de Estágio Aprovada",
		Text: fmt.Sprintf("Olá %s,\n\nSua solicitação de estágio para %s foi aprovada.\n"+
			"Aguarde o envio dos documentos para assinatura ou a chamada do seu orientador.\n\n"+
			"Atenciosamente,\nEquipe EstagioHub", data.Email, data.Organization),
		HTML: html,
	}, nil
}

func buildRejectedMessage(internship *entity.Internship, reason string) (*message, error) {
	data := internshipData{
		Email:        internship.Student.User.Email,
		Organization: internship.Organization.BusinessName,
		Reason:       reason,
	}
	html, err := render(rejectedHTML, data)
	if err != nil {
		return nil, err
	}

	return &message{
		Subject: "Solicitação de Estágio Rejeitada",
		Text: fmt.Sprintf("Olá %s,\n\nSua solicitação de estágio para %s foi rejeitada.\n%q.\n"+
			"Por favor, tente novamente ou entre em contato com o orientador do seu estágio.\n\n"+
			"Atenciosamente,\nEquipe EstagioHub", data.Email, data.Organization, reason),
		HTML: html,
	}, nil
}

func buildCanceledMessage(internship *entity.Internship, reason string) (*message, error) {
	if reason == "" {
		reason = "Motivo não especificado"
	}
	data := internshipData{
		Email:        internship.Student.User.Email,
		Organization: internship.Organization.BusinessName,
		Reason:       reason,
	}
	html, err := render(canceledHTML, data)
	if err != nil {
		return nil, err
	}

	return &message{
		Subject: "Solicitação de Estágio Cancelada",
		Text: fmt.Sprintf("Olá %s,\n\nSua solicitação de estágio para %s foi cancelada.\n%q.\n\n"+
			"Atenciosamente,\nEquipe EstagioHub", data.Email, data.Organization, reason),
		HTML: html,
	}, nil
}

func buildClosedMessage(internship *entity.Internship, reason string) (*message, error) {
	data := internshipData{
		Email:        internship.Student.User.Email,
		Organization: internship.Organization.BusinessName,
		Reason:       reason,
	}
	html, err := render(closedHTML, data)
	if err != nil {
		return nil, err
	}

	return &message{
		Subject: "Estágio Encerrado",
		Text: fmt.Sprintf("Olá %s,\n\nSeu estágio para %s foi encerrado.\n%q.\n\n"+
			"Atenciosamente,\nEquipe EstagioHub", data.Email, data.Organization, reason),
		HTML: html,
	}, nil
}

// documentSubjects maps each lifecycle stage to its forwarding subject line.
var documentSubjects = map[entity.DocumentType]string{
	entity.DocumentTypeStart:    "Documento de Início de Estágio",
	entity.DocumentTypeProgress: "Documento de Progresso do Estágio",
	entity.DocumentTypeFinished: "Documento de Término do Estágio",
}

func buildDocumentMessage(internship *entity.Internship, docType entity.DocumentType) *message {
	stage := map[entity.DocumentType]string{
		entity.DocumentTypeStart:    "inicial",
		entity.DocumentTypeProgress: "de progresso",
		entity.DocumentTypeFinished: "de término",
	}[docType]

	email := internship.Supervisor.User.Email

	return &message{
		Subject: documentSubjects[docType],
		Text: fmt.Sprintf("Olá %s,\n\nSegue anexado o documento %s do estágio para revisão.\n\n"+
			"Atenciosamente,\nEquipe EstagioHub", email, stage),
	}
}
