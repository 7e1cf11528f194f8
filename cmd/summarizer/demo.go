package main

import "github.com/spacesedan/chatlog/internal/parser"

var demoInputs = map[string]string{
	parser.FormatCSV:  demoCSV,
	parser.FormatJSON: demoJSON,
}

const demoCSV = `conversation_id,sender,timestamp,message
conv1,customer,01-02-2023,"Hello, I have a problem with my order."
conv1,agent,01-02-2023,"I'm sorry to hear that. What seems to be the issue?"
conv1,customer,01-02-2023,"The product arrived damaged. I'm very unhappy with this."
conv1,agent,01-02-2023,"I apologize for the inconvenience. We'll send a replacement right away."
conv2,customer,02-02-2023,"Thank you for the excellent service! I'm very happy with my purchase."
conv2,agent,02-02-2023,"You're welcome! We're glad you had a great experience."
`

const demoJSON = `{
  "conversations": [
    {"conversation_id": "conv100", "sender": "customer", "timestamp": "12-03-2021", "message": "I need help with my account."},
    {"conversation_id": "conv100", "sender": "agent", "timestamp": "12-03-2021", "message": "Sure, I can help you with your account details."},
    {"conversation_id": "conv100", "sender": "customer", "timestamp": "12-03-2021", "message": "I forgot my password and cannot log in."},
    {"conversation_id": "conv100", "sender": "agent", "timestamp": "12-03-2021", "message": "Please try resetting your password using the 'Forgot Password' link."},
    {"conversation_id": "conv100", "sender": "customer", "timestamp": "12-03-2021", "message": "I will try that, thank you."},
    {"conversation_id": "conv101", "sender": "customer", "timestamp": "12-03-2021", "message": "I recently updated the software and noticed several performance issues, including slow loading times and frequent crashes that disrupt my workflow significantly."},
    {"conversation_id": "conv101", "sender": "agent", "timestamp": "12-03-2021", "message": "We apologize for the inconvenience caused by the update; our technical team is actively investigating these performance issues and working on a patch to enhance stability and speed."},
    {"conversation_id": "conv101", "sender": "customer", "timestamp": "12-03-2021", "message": "The update not only affected performance but also changed the interface drastically, making it difficult to navigate, which has impacted my overall user experience."},
    {"conversation_id": "conv101", "sender": "agent", "timestamp": "12-03-2021", "message": "Thank you for your detailed feedback; we are documenting your concerns and will prioritize improvements in our next update to ensure a better user experience."},
    {"conversation_id": "conv101", "sender": "customer", "timestamp": "12-03-2021", "message": "I appreciate the prompt response and detailed explanation regarding the ongoing efforts to resolve these issues."},
    {"conversation_id": "conv102", "sender": "customer", "timestamp": "12-03-2021", "message": "I am very satisfied with the recent improvements in the service quality and customer support."},
    {"conversation_id": "conv102", "sender": "agent", "timestamp": "12-03-2021", "message": "Thank you for your positive feedback; we are glad you enjoy the new design and improved features."},
    {"conversation_id": "conv102", "sender": "customer", "timestamp": "12-03-2021", "message": "The new features have improved navigation and overall functionality remarkably."},
    {"conversation_id": "conv102", "sender": "agent", "timestamp": "12-03-2021", "message": "We appreciate your kind words and are committed to further enhancing our service."},
    {"conversation_id": "conv102", "sender": "customer", "timestamp": "12-03-2021", "message": "Please keep up the great work and continue to listen to your customers."}
  ]
}
`
