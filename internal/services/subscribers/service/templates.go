package service

// Email copy for the subscription flow. Kept as plain constants,
// the front end owns anything fancier

const welcomeSubject = "Welcome to the Personal Assistant App!"

const welcomeBody = `<h2>Welcome aboard!</h2>
<p>Thanks for subscribing to the Personal Assistant App newsletter.</p>
<p>You'll hear from us with tips on getting the most out of your assistant,
new features, and the occasional update from the team.</p>
<p>Warm regards,<br>The Personal Assistant App Team</p>`

const followUpSubject = "Your weekly Personal Assistant App digest"

const followUpBody = `<h2>Hello again!</h2>
<p>Here's your weekly check-in from the Personal Assistant App.</p>
<p>Try asking your assistant about the weather, booking an appointment,
or setting a reminder, it keeps getting better every week.</p>
<p>Warm regards,<br>The Personal Assistant App Team</p>`
