package email

// Email templates using HTML

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #059669, #047857); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .button { display: inline-block; background: #059669; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
        .features { margin: 20px 0; }
        .feature { padding: 10px 0; border-bottom: 1px solid #e5e7eb; }
        .feature:last-child { border-bottom: none; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Condomino</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Condominium Management Platform</p>
    </div>
    <div class="content">
        <h2>Welcome, {{.UserName}}!</h2>
        <p>Your account at <strong>{{.TenantName}}</strong> is ready.</p>

        <div class="features">
            <h3>What you can do:</h3>
            <div class="feature">Book common areas like the party hall and barbecue space</div>
            <div class="feature">Follow the status of your bookings and payments</div>
            <div class="feature">Receive notices from the building administration</div>
        </div>

        <p style="text-align: center;">
            <a href="{{.BaseURL}}/dashboard" class="button">Get Started</a>
        </p>

        <p>If you have any questions, our support team is here to help.</p>
    </div>
    <div class="footer">
        <p>&copy; 2026 Condomino. All rights reserved.</p>
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`

const bookingCreatedTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #059669, #047857); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .info-box { background: #d1fae5; border: 1px solid #10b981; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .info-row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #a7f3d0; }
        .info-row:last-child { border-bottom: none; }
        .info-label { color: #047857; }
        .info-value { font-weight: 600; color: #065f46; }
        .warning { background: #fef3c7; border: 1px solid #f59e0b; padding: 15px; border-radius: 8px; margin: 20px 0; color: #92400e; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Condomino</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Condominium Management Platform</p>
    </div>
    <div class="content">
        <h2>Booking Received</h2>
        <p>Hello {{.UserName}},</p>
        <p>Your booking request was registered.</p>

        <div class="info-box">
            <div class="info-row">
                <span class="info-label">Facility</span>
                <span class="info-value">{{.FacilityName}}</span>
            </div>
            <div class="info-row">
                <span class="info-label">Date</span>
                <span class="info-value">{{.Date}}</span>
            </div>
            <div class="info-row">
                <span class="info-label">Status</span>
                <span class="info-value">{{.Status}}</span>
            </div>
        </div>

        {{if eq .Status "pending"}}
        <div class="warning">
            <strong>Payment required:</strong> attach your payment receipt within 30 minutes or the slot is released to other residents.
        </div>
        {{end}}
    </div>
    <div class="footer">
        <p>&copy; 2026 Condomino. All rights reserved.</p>
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`

const bookingReviewedTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #059669, #047857); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .info-box { background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .info-row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #e5e7eb; }
        .info-row:last-child { border-bottom: none; }
        .info-label { color: #6b7280; }
        .info-value { font-weight: 600; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Condomino</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Condominium Management Platform</p>
    </div>
    <div class="content">
        <h2>Booking {{.Outcome}}</h2>
        <p>Hello {{.UserName}},</p>
        <p>The administration reviewed your booking and it was <strong>{{.Outcome}}</strong>.</p>

        <div class="info-box">
            <div class="info-row">
                <span class="info-label">Facility</span>
                <span class="info-value">{{.FacilityName}}</span>
            </div>
            <div class="info-row">
                <span class="info-label">Date</span>
                <span class="info-value">{{.Date}}</span>
            </div>
        </div>
    </div>
    <div class="footer">
        <p>&copy; 2026 Condomino. All rights reserved.</p>
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`

const commissionPaidTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #059669, #047857); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .total-box { background: #059669; color: white; padding: 20px; border-radius: 8px; margin: 20px 0; text-align: center; }
        .total-amount { font-size: 32px; font-weight: bold; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Condomino</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Affiliate Program</p>
    </div>
    <div class="content">
        <h2>Payout Completed</h2>
        <p>Hello {{.UserName}},</p>
        <p>Your available commission balance was transferred to your payment key.</p>

        <div class="total-box">
            <p style="margin: 0 0 5px 0; opacity: 0.9;">Amount Transferred</p>
            <div class="total-amount">{{.Currency}} {{.Amount}}</div>
        </div>

        <p style="font-size: 12px; color: #6b7280;">Transfer reference: {{.TransferID}}</p>
    </div>
    <div class="footer">
        <p>&copy; 2026 Condomino. All rights reserved.</p>
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`

const passwordResetTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #059669, #047857); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px; }
        .button { display: inline-block; background: #059669; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
        .warning { background: #fef3c7; border: 1px solid #f59e0b; padding: 15px; border-radius: 8px; margin: 20px 0; color: #92400e; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Condomino</h1>
        <p style="margin: 5px 0 0 0; opacity: 0.9;">Condominium Management Platform</p>
    </div>
    <div class="content">
        <h2>Reset Your Password</h2>
        <p>Hello {{.UserName}},</p>
        <p>We received a request to reset your password. Click the button below to create a new password:</p>

        <p style="text-align: center;">
            <a href="{{.ResetURL}}" class="button">Reset Password</a>
        </p>

        <div class="warning">
            <strong>Security Notice:</strong> This link will expire in 1 hour. If you didn't request a password reset, please ignore this email or contact support if you're concerned about your account security.
        </div>

        <p style="font-size: 12px; color: #6b7280;">
            If the button doesn't work, copy and paste this link into your browser:<br>
            <a href="{{.ResetURL}}" style="color: #059669; word-break: break-all;">{{.ResetURL}}</a>
        </p>
    </div>
    <div class="footer">
        <p>&copy; 2026 Condomino. All rights reserved.</p>
        <p>This is an automated message. Please do not reply to this email.</p>
    </div>
</body>
</html>
`
