package email

import (
	"fmt"
)

// ActivationEmailData contains the data needed for the guardian activation email.
type ActivationEmailData struct {
	GuardianEmail string
	PatientName   string
	ActivationURL string
	TTLHours      int
	AppName       string
}

// BuildActivationEmail creates the activation email sent to a guardian so
// they can set a password and fill in questionnaires for their child.
func BuildActivationEmail(data ActivationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Dépisto"
	}

	subject := fmt.Sprintf("Activez votre espace famille %s", appName)

	textBody := fmt.Sprintf(`Bonjour,

Votre praticien a créé un espace famille pour %s sur %s.

Pour l'activer et choisir votre mot de passe, cliquez sur le lien ci-dessous :
%s

Ce lien est valable %d heures. Passé ce délai, demandez à votre praticien de vous en renvoyer un nouveau.

Si vous n'êtes pas à l'origine de cette demande, vous pouvez ignorer cet e-mail.

L'équipe %s`,
		data.PatientName, appName, data.ActivationURL, data.TTLHours, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Bonjour,</h2>
    <p>Votre praticien a créé un espace famille pour <strong>%s</strong> sur %s.</p>
    <p>Pour l'activer et choisir votre mot de passe, cliquez sur le bouton ci-dessous :</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Activer mon espace</a>
    </p>
    <p style="color: #6b7280; font-size: 14px;"><em>Ce lien est valable %d heures. Passé ce délai, demandez à votre praticien de vous en renvoyer un nouveau.</em></p>
    <p style="color: #6b7280; font-size: 14px;">Si vous n'êtes pas à l'origine de cette demande, vous pouvez ignorer cet e-mail.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">L'équipe %s</p>
</body>
</html>`,
		data.PatientName, appName, data.ActivationURL, data.TTLHours, appName)

	return Message{
		To:       []string{data.GuardianEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BilanReadyEmailData contains the data needed for the report-ready
// notification sent to the prescribing practitioner.
type BilanReadyEmailData struct {
	PractitionerEmail string
	PractitionerName  string
	PatientName       string
	TestName          string
	BilanURL          string
	AppName           string
}

// BuildBilanReadyEmail notifies the practitioner that a report has been
// generated and is waiting for review.
func BuildBilanReadyEmail(data BilanReadyEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Dépisto"
	}

	subject := fmt.Sprintf("Bilan disponible pour %s", data.PatientName)

	textBody := fmt.Sprintf(`Bonjour %s,

Le questionnaire %s de %s est terminé. Le bilan a été généré et attend votre relecture.

Consultez-le ici :
%s

L'équipe %s`,
		data.PractitionerName, data.TestName, data.PatientName, data.BilanURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Bonjour %s,</h2>
    <p>Le questionnaire <strong>%s</strong> de <strong>%s</strong> est terminé. Le bilan a été généré et attend votre relecture.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Consulter le bilan</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">L'équipe %s</p>
</body>
</html>`,
		data.PractitionerName, data.TestName, data.PatientName, data.BilanURL, appName)

	return Message{
		To:       []string{data.PractitionerEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ReminderEmailData contains the data needed for a questionnaire reminder
// sent to a guardian whose passation has been suspended for too long.
type ReminderEmailData struct {
	GuardianEmail   string
	PatientName     string
	TestName        string
	ProgressPercent int
	ResumeURL       string
	AppName         string
}

// BuildSuspendedReminderEmail nudges a guardian to resume a questionnaire
// left unfinished.
func BuildSuspendedReminderEmail(data ReminderEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Dépisto"
	}

	subject := fmt.Sprintf("Reprenez le questionnaire de %s", data.PatientName)

	textBody := fmt.Sprintf(`Bonjour,

Le questionnaire %s de %s est en attente. Vous l'avez complété à %d %%.

Vos réponses sont enregistrées, vous pouvez reprendre là où vous vous étiez arrêté :
%s

L'équipe %s`,
		data.TestName, data.PatientName, data.ProgressPercent, data.ResumeURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Bonjour,</h2>
    <p>Le questionnaire <strong>%s</strong> de <strong>%s</strong> est en attente. Vous l'avez complété à <strong>%d %%</strong>.</p>
    <p>Vos réponses sont enregistrées, vous pouvez reprendre là où vous vous étiez arrêté.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Reprendre le questionnaire</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">L'équipe %s</p>
</body>
</html>`,
		data.TestName, data.PatientName, data.ProgressPercent, data.ResumeURL, appName)

	return Message{
		To:       []string{data.GuardianEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
