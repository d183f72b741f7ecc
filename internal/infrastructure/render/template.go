package render

const invoiceDocumentTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8" />
    <title>Invoice #{{.InvoiceNumber}}</title>
    <style>
        body { font-family: 'Helvetica Neue', 'Helvetica', Helvetica, Arial, sans-serif; color: #555; }
        .invoice-box { max-width: 800px; margin: auto; padding: 30px; border: 1px solid #eee; box-shadow: 0 0 10px rgba(0, 0, 0, 0.15); font-size: 16px; line-height: 24px; }
        .invoice-box .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 40px; }
        .invoice-box .header .logo { font-size: 28px; font-weight: bold; color: #333; }
        .invoice-box .header .issuer-contact { font-size: 12px; color: #777; }
        .invoice-box .header .invoice-title { text-align: right; }
        .invoice-box .header .invoice-title h1 { margin: 0; font-size: 45px; color: #0d9488; font-weight: 300; }
        .invoice-box .details { display: flex; justify-content: space-between; margin-bottom: 40px; }
        .invoice-box .details .bill-to h2 { margin: 0 0 5px 0; font-size: 16px; font-weight: bold; }
        .invoice-box .invoice-meta { text-align: right; }
        .invoice-box .invoice-meta div { margin-bottom: 5px; }
        .invoice-box .invoice-meta span { display: inline-block; min-width: 90px; font-weight: bold; text-align: left; }
        .invoice-box table.items-table { width: 100%; border-collapse: collapse; }
        .invoice-box table.items-table th { background: #f7f7f7; border-bottom: 2px solid #ddd; font-weight: bold; padding: 10px 0; text-align: left; }
        .invoice-box table.items-table th:last-child, .invoice-box table.items-table td:last-child { text-align: right; }
        .invoice-box table.items-table td { border-bottom: 1px solid #eee; padding: 10px 0; }
        .invoice-box .totals { text-align: right; margin-top: 20px; }
        .invoice-box .totals div { margin-bottom: 5px; }
        .invoice-box .totals .grand-total { margin-top: 10px; padding: 10px; background-color: #0d9488; color: white; font-size: 1.2em; font-weight: bold; }
        .invoice-box .freetext { margin-top: 30px; font-size: 13px; color: #666; }
        .invoice-box .freetext h3 { margin: 0 0 5px 0; font-size: 13px; color: #333; text-transform: uppercase; }
        .invoice-box .footer { margin-top: 40px; text-align: center; font-size: 12px; color: #777; }
    </style>
</head>
<body>
    <div class="invoice-box">
        <div class="header">
            <div>
                <div class="logo">{{.Issuer.Name}}</div>
                <div class="issuer-contact">{{with .Issuer.Address}}{{nl2br .}}<br>{{end}}{{.Issuer.Email}}</div>
            </div>
            <div class="invoice-title">
                <h1>INVOICE</h1>
            </div>
        </div>
        <div class="details">
            <div class="bill-to">
                <h2>Bill To:</h2>
                {{.ClientName}}<br>
                {{.ClientCompany}}<br>
                {{nl2br .ClientAddress}}
            </div>
            <div class="invoice-meta">
                <div><span>Invoice No:</span> {{.InvoiceNumber}}</div>
                <div><span>Issue Date:</span> {{.IssueDate}}</div>
                <div><span>Due Date:</span> {{.DueDate}}</div>
            </div>
        </div>
        <table class="items-table">
            <thead>
                <tr>
                    <th>Description</th>
                    <th>Qty</th>
                    <th>Unit Price</th>
                    <th>Total</th>
                </tr>
            </thead>
            <tbody>
            {{- range .Items}}
                <tr class="item">
                    <td>{{.Description}}</td>
                    <td>{{.Quantity}}</td>
                    <td>{{.Rate}}</td>
                    <td>{{.Amount}}</td>
                </tr>
            {{- end}}
            </tbody>
        </table>
        <div class="totals">
            <div><span>Subtotal:</span> {{.Subtotal}}</div>
            <div><span>Tax ({{.TaxRate}}%):</span> {{.TaxAmount}}</div>
            <div class="grand-total">Grand Total: {{.Total}}</div>
        </div>
        {{- if .Notes}}
        <div class="freetext">
            <h3>Notes</h3>
            {{nl2br .Notes}}
        </div>
        {{- end}}
        {{- if .Terms}}
        <div class="freetext">
            <h3>Terms</h3>
            {{nl2br .Terms}}
        </div>
        {{- end}}
        <div class="footer">
            Thank you for your business!
        </div>
    </div>
</body>
</html>
`
